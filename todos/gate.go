package todos

// Caller is the authenticated identity a request acts as.
type Caller struct {
	UID   string
	Email string
}

func (c Caller) IsZero() bool {
	return c.UID == ""
}

// Partition is the resolved target of a mutation: either the caller's own
// partition or another owner's, addressed explicitly.
type Partition struct {
	OwnerID string
	Own     bool
}

// CanActDirectly reports whether the caller owns the target partition.
// An empty ownerID means "my own todo" and always resolves to the caller.
func CanActDirectly(caller Caller, ownerID string) bool {
	return ownerID == "" || ownerID == caller.UID
}

// ResolvePartition decides which partition a mutation is addressed to.
// Mutations on someone else's partition are not blocked here: they are sent
// to the store owner-addressed, and the store's security rules have the
// final word on whether a guest may write.
func ResolvePartition(caller Caller, ownerID string) Partition {
	if CanActDirectly(caller, ownerID) {
		return Partition{OwnerID: caller.UID, Own: true}
	}
	return Partition{OwnerID: ownerID}
}
