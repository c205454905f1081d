// Package models defines the core domain models for Christoffel's menu app.
//
// # Current Models
//
// The following models are shared by every screen flow:
//   - MenuItem: a single sellable dish, or a drink synthesized into an order
//   - Course: the fixed category a dish belongs to; drives section grouping
//   - DrinksData: the cold/hot drink name lists kept beside the dish list
//   - User: an account resolved at login (the chef is admin, everyone else a guest)
//
// # Design Principles
//
// 1. **One logical menu**: every screen operates on a snapshot of the same
//    item list and drink lists; models carry no back references to a store.
// 2. **Value semantics**: snapshots are copies, so models avoid pointers and
//    keep relationships as ID strings.
// 3. **Stable derived IDs**: drinks carry no persisted ID; DrinkID derives one
//    deterministically so the removal flow can address them.
package models
