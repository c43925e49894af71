// Package values implements the observable property cells that expose device
// state to a control surface: a stored-value cell with range validation and a
// view cell that composes a base cell with read/write transforms.
//
// Cells assume single-threaded access from the control loop; they perform no
// internal locking.
package values
