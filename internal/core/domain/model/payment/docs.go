// Package payment models the single payment attached to an order. Capturing
// money is out of scope: a payment only records what the customer intends to
// pay with and whether the shop confirmed or refused it.
//
// Confirmation is idempotent and refusal is idempotent; a confirmed payment
// cannot be refused and a refused one cannot be confirmed.
package payment
