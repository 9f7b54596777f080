package astar

// PriorityQueueItem is one open-list entry. FCost is the priority the entry was
// queued (or last repositioned) with; it can go stale when the node is relaxed
// under RelaxLegacy.
type PriorityQueueItem struct {
	NodeIndex    int
	FCost        float64
	Sequence     uint64
	IndexInQueue int
}

// PriorityQueue orders entries by FCost, then by insertion sequence, which makes
// extraction behave like a stable sort on f.
type PriorityQueue []*PriorityQueueItem

func (queue PriorityQueue) Len() int { return len(queue) }
func (queue PriorityQueue) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue PriorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue) Push(x any) {
	item := x.(*PriorityQueueItem)
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}
