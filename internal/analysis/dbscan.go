package analysis

// Cluster labels used internally during expansion.
const (
	labelUnvisited = -2
	labelNoise     = -1
)

// DBSCAN partitions point indices into density-based clusters over a
// precomputed distance matrix. A point is a core point when at least
// minSamples other points lie within eps of it; core points reachable
// through each other's neighborhoods share a cluster, non-core points
// within eps of a cluster join it, and the rest are noise.
//
// Points are visited in ascending index order and neighborhoods are
// enumerated the same way, so the partition is identical run to run.
// Each returned cluster is sorted ascending; clusters appear in
// discovery order.
func DBSCAN(dist [][]float64, eps float64, minSamples int) (clusters [][]int, noise []int) {
	n := len(dist)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = labelUnvisited
	}

	neighbors := func(i int) []int {
		var out []int
		for j := 0; j < n; j++ {
			if j != i && dist[i][j] <= eps {
				out = append(out, j)
			}
		}
		return out
	}

	next := 0
	for i := 0; i < n; i++ {
		if labels[i] != labelUnvisited {
			continue
		}

		seed := neighbors(i)
		if len(seed) < minSamples {
			labels[i] = labelNoise
			continue
		}

		labels[i] = next
		queue := append([]int(nil), seed...)
		for k := 0; k < len(queue); k++ {
			j := queue[k]
			if labels[j] == labelNoise {
				// Border point: density-reachable but not core.
				labels[j] = next
				continue
			}
			if labels[j] != labelUnvisited {
				continue
			}
			labels[j] = next
			if reach := neighbors(j); len(reach) >= minSamples {
				queue = append(queue, reach...)
			}
		}
		next++
	}

	clusters = make([][]int, next)
	for i, label := range labels {
		if label == labelNoise {
			noise = append(noise, i)
			continue
		}
		clusters[label] = append(clusters[label], i)
	}
	return clusters, noise
}
