package tournament

// Tournament is a single scheduled match or a concluded result.
// Result stays nil until a match concludes; IsUpcoming partitions the
// collection into the "upcoming" and "results" views. Records never flip
// between the two: history is append-only.
type Tournament struct {
	ID         int
	Opponent   string
	Date       string
	Type       string
	Result     *string
	IsUpcoming bool
}
