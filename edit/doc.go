// edit is the interactive cell-grid editor for a contiguous range of
// commits. It drives a raw terminal directly: one row per commit, one
// column per metadata field, arrow or hjkl navigation, Enter to edit a
// cell, Esc to save and exit, Ctrl+C to discard everything.
//
// The input stream and the terminal control are both abstracted so the
// state machine can be driven by scripted keystrokes in tests.
package edit
