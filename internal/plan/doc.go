// Package plan turns a user's fitness goal into training and diet advice.
//
// The goal is collected through a Prompter and re-requested until the answer
// is one of the supported goals. Advice texts come from fixed rule tables
// keyed by goal.
package plan
