// Package edgelist reads line-oriented edge lists of unsigned integers and
// feeds them into a graph.
//
// Each non-blank line holds whitespace-separated base-10 uint64 values. Lines
// whose first non-space byte is '#' are comments. Load interprets a row as
// "a b" (default weight) or "a b w":
//
//	# from to [weight]
//	0 1
//	1 2 5
//
// By default a and b become labels (their decimal text); WithIndexMode uses
// them as matrix indices instead.
package edgelist
