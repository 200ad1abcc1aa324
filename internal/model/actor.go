package model

// ActorKind distinguishes customers from suppliers.
type ActorKind string

const (
	ActorKindCustomer ActorKind = "customer"
	ActorKindSupplier ActorKind = "supplier"
)

// Actor is a named counter-party referenced by transactions.
type Actor struct {
	ID   int64
	Name string
	Kind ActorKind
}
