// Package order provides the Order aggregate of the lunchbox ordering system:
// priced lines frozen at assembly time, the delivery details captured with the
// order and the status lifecycle.
//
// The package includes:
//   - Order: the aggregate root, created in CRIADO and moved by Transition
//   - Status: the lifecycle adjacency table
//   - Line: an item, its quantity and its frozen unit price
//   - DeliveryInfo: pickup or home delivery with an address snapshot
//   - OrderCreated, StatusChanged: domain events recorded by the aggregate
//
// Key business rules:
//   - An order has at least one line and its prices never change after creation
//   - Status follows CRIADO -> PAGO -> PREPARO -> ENTREGUE, and any
//     non-terminal status may move to CANCELADO
//   - Cancelling requires a non-blank reason, stored verbatim and never changed
//   - Home delivery requires a street
package order
