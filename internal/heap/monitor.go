package heap

// Monitor is a synchronization object from the monitor cache. Its owner
// slot references the object the monitor is inflated for and must be kept
// consistent when that object moves.
type Monitor struct {
	Owner      Slot
	Recursions uint32
}
