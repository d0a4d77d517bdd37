// Package shop contains the Storefront bounded context.
// This context models a customer-facing store session: the product catalog,
// the shopping cart, coupon application, and order checkout against a
// remote commerce API.
//
// Key concepts:
//   - CommerceGateway: Port interface for the remote commerce API
//   - Cart / CartItem: Server-owned cart state, mirrored locally and only ever
//     replaced wholesale by a fresh server snapshot (never patched in place)
//   - BusyState: Scalar in-flight indicator for page- or row-scoped operations
//   - Notifier / ProductModal: Ports for the user-feedback collaborators
//
// Design Pattern: Ports & Adapters
//   - Ports (interfaces) are defined here in the domain layer
//   - Adapters (implementations) are in the infrastructure and interfaces layers
package shop
