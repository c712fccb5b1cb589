// Package disjunct holds the persistent output of expression expansion.
//
// A Disjunct is one admissible connector pattern of a word: a left and a
// right Connector chain plus a cost. Chains are singly linked; distinct
// disjuncts of the same word may share chain tails, so chains must be treated
// as read-only once built.
//
// Chains run far-to-near. The head of a chain is the shallow connector and
// links to the farthest word; the last connector links nearest to the germ.
package disjunct
