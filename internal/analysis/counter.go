package analysis

import "sort"

// counter 是保留首次出现顺序的计数器，排序时计数相同者按首次出现先后
type counter struct {
	keys   []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) Add(key string, n int) {
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key] += n
}

func (c *counter) Get(key string) int {
	return c.counts[key]
}

func (c *counter) Len() int {
	return len(c.keys)
}

// MostCommon 返回按计数降序排列的前 n 个键；n <= 0 表示全部
func (c *counter) MostCommon(n int) []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	if n > 0 && len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
