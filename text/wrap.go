package text

// lineRange is a half-open range of clusters forming one line.
type lineRange struct {
	start, end int
}

// wrapClusters breaks clusters greedily into lines no wider than maxWidth.
//
// Whitespace never causes a break: it hangs past the edge and is trimmed
// from the line width. When a line holds no break opportunity the overlong
// word is split between clusters. Every line holds at least one cluster.
func wrapClusters(clusters []cluster, maxWidth float64) []lineRange {
	if maxWidth <= 0 || len(clusters) == 0 {
		return []lineRange{{0, len(clusters)}}
	}

	var lines []lineRange
	lineStart := 0
	lastBreak := -1
	pen := 0.0

	for i, c := range clusters {
		for !c.space && i > lineStart && pen+c.advance > maxWidth {
			end := i
			if lastBreak >= lineStart && lastBreak < i {
				end = lastBreak + 1
			}
			lines = append(lines, lineRange{lineStart, end})
			lineStart = end
			lastBreak = -1
			pen = advanceOf(clusters[lineStart:i])
		}
		pen += c.advance
		if c.breakAfter {
			lastBreak = i
		}
	}
	lines = append(lines, lineRange{lineStart, len(clusters)})
	return lines
}

func advanceOf(clusters []cluster) float64 {
	w := 0.0
	for _, c := range clusters {
		w += c.advance
	}
	return w
}
