package domain

// Principal is whatever identity the auth middleware attached to a request.
// Route groups are partitioned by principal kind, so handlers narrow it to
// the concrete type they expect.
type Principal interface {
	PrincipalID() string
	PrincipalKind() string
}

// PrincipalCustomer is the kind reported by *Customer.
const PrincipalCustomer = "customer"
