// Package dialog implements the broker through which modules open host
// dialogs and await their outcome.
//
// Opening a dialog produces a Session parameterized by the caller's model
// type. The session resolves exactly once, when the user submits or
// dismisses the dialog, and Await delivers a Result distinguishing the two
// through DidOkOrSubmit. The dialog body may mutate its own presentation
// options after opening via the SetOptions prop; once the session has
// resolved, SetOptions becomes a no-op.
//
// The broker imposes no mutual exclusion: sessions stack in open order and
// the host's UI decides how (or whether) to present more than one at a
// time.
package dialog
