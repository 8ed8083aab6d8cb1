// Package diffing computes explainable differences between two
// captures. Both trees are flattened in preorder, candidate pairs are
// scored with the weighted node similarity, a greedy matching keeps
// the highest-scoring pairs, and every matched pair and unmatched node
// is classified into a change.
//
// The matching is deliberately greedy rather than optimal: it keeps
// complexity low and the output deterministic. Ties between candidates
// of equal similarity resolve in the iteration order of the candidate
// list, which is not load-bearing.
package diffing
