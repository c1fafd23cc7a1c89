// Package dom provides a headless document tree for popover-style widgets.
//
// A Document owns a tree of Elements rooted at Body. Elements carry a small
// block layout model (column or row stacking, padding, gap, margin, fixed
// positioning), focus state, and click/keydown handlers. All mutation happens
// on a single event loop: Click, ClickAt and PressKey dispatch an event, then
// Flush runs layout, post-layout callbacks and post-commit callbacks until the
// tree settles.
package dom
