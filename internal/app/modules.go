package app

import (
	"github.com/vk/modhost/internal/modapi"
	"github.com/vk/modhost/modules/branding"
	"github.com/vk/modhost/modules/roomtools"
)

// coreModules is the definitive list of all modules that are compiled into
// the modhost binary.
var coreModules = []modapi.Module{
	&branding.Module{},
	&roomtools.Module{},
}
