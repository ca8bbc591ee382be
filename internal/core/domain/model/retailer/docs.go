// Package retailer provides the Retailer aggregate: a named shipping
// destination with a validated postal address. Retailers are created only
// through the wizard's inline subflow, are immutable afterwards, and are
// referenced by id from work orders.
package retailer
