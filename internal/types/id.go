// README: Common identifier type used across modules.
package types

// ID is an opaque record identifier assigned by the document store.
type ID string

func (id ID) String() string { return string(id) }
