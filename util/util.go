package util

import (
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
)

var chartSuffixes = []string{".txt", ".cho", ".crd", ".pro", ".chopro", ".onsong"}

// GatherAllChartPaths walks root collecting chord-chart files. maxNum 0
// means no limit.
func GatherAllChartPaths(root string, maxNum int) []string {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			panic("Error walking: " + err.Error())
		}
		if !d.IsDir() {
			for _, suffix := range chartSuffixes {
				if strings.HasSuffix(strings.ToLower(s), suffix) {
					if maxNum == 0 || len(res) < maxNum {
						res = append(res, s)
					}
					break
				}
			}
		}
		return nil
	}
	filepath.WalkDir(root, walk)
	return res
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
