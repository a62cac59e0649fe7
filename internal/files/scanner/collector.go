package scanner

import "github.com/vvka-141/quickproj/pkg/quickproj"

// collector gathers detections with one shard per worker, so appends
// never contend. Shards are merged after all workers have returned.
type collector struct {
	shards []*shard
}

type shard struct {
	projects []quickproj.Project
}

func newCollector(workers int) *collector {
	c := &collector{shards: make([]*shard, workers)}
	for i := range c.shards {
		c.shards[i] = &shard{}
	}
	return c
}

func (c *collector) shard(i int) *shard {
	return c.shards[i]
}

func (s *shard) add(p quickproj.Project) {
	s.projects = append(s.projects, p)
}

// merge returns the deduplicated, path-sorted set of all detections.
func (c *collector) merge() quickproj.ProjectSet {
	total := 0
	for _, s := range c.shards {
		total += len(s.projects)
	}
	all := make([]quickproj.Project, 0, total)
	for _, s := range c.shards {
		all = append(all, s.projects...)
	}
	return quickproj.NewProjectSet(all)
}
