package dialog

// Options describes a dialog's presentation. The zero value is a plain,
// submittable dialog with no title.
type Options struct {
	// Title is rendered in the dialog chrome.
	Title string
	// ActionLabel overrides the label of the primary (submit) action.
	ActionLabel string
	// CanSubmit gates the primary action. Nil means submittable.
	CanSubmit *bool
}

// WithTitle is sugar for the common case of opening a dialog with nothing
// but a title.
func WithTitle(title string) Options {
	return Options{Title: title}
}

// OptionsPatch is a partial update applied by SetOptions. Nil fields leave
// the current value untouched.
type OptionsPatch struct {
	Title       *string
	ActionLabel *string
	CanSubmit   *bool
}

// apply merges the patch into opts and returns the result.
func (p OptionsPatch) apply(opts Options) Options {
	if p.Title != nil {
		opts.Title = *p.Title
	}
	if p.ActionLabel != nil {
		opts.ActionLabel = *p.ActionLabel
	}
	if p.CanSubmit != nil {
		v := *p.CanSubmit
		opts.CanSubmit = &v
	}
	return opts
}
