// Package ordering sorts a profile's nested collections into the order the
// game client presents them.
//
// Every ordering is a composite comparator built from (direction, key)
// pairs with By, on top of the three-way utils.Compare:
//
//   - Creatures: outside storage first, class desc, level desc, attribute asc, unit id asc.
//   - Equipped runes: slot asc.
//   - Inventory runes: set asc, slot asc.
//   - Craft items: craft type asc, craft item id asc.
//
// Sorts are stable and the unit id makes the roster order total, so
// applying Order twice gives the same result as applying it once.
package ordering
