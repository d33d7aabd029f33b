// Package links scores candidate edges for link prediction.
//
// Every predictor scans unordered non-adjacent pairs of distinct nodes:
// common-neighbor predictors (Jaccard, Adamic-Adar, resource allocation,
// common neighbors) emit only pairs sharing at least one neighbor, while
// preferential attachment scores every non-adjacent pair. Pairs are oriented
// with Node1 the earlier node in first-appearance order and listed in
// ascending (Node1, Node2) index order.
package links
