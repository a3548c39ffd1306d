// Package events provides the notification channel used by the community feed.
//
// A Subject holds an ordered set of Observers and delivers each Event to them
// synchronously, in subscription order, before Notify returns. Delivery is
// fail-fast: the first Observer error stops the dispatch and is returned to
// the caller wrapped in a *DispatchError.
//
// The primary components are:
// - Event: a typed notification with an arbitrary payload
// - Observer: interface for components that receive events
// - Subject: ordered, de-duplicated observer registry and dispatcher
package events
