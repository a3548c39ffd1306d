// Package domain contains the core entities of the application: user
// accounts, training and diet records, and the fitness goals that drive plan
// generation. It is independent of any storage or delivery mechanism.
package domain
