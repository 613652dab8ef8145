package main

import (
	"fmt"
	"iter"

	"github.com/scottcagno/linmap"
	"github.com/scottcagno/linmap/pkg/linearmap"
)

func main() {
	reviews := OpenReviewDB()

	// review some movies
	reviews.Put("Office Space", "Deals with real issues in the workplace.")
	reviews.Put("Pulp Fiction", "Masterpiece.")
	reviews.Put("The Godfather", "Very enjoyable.")
	reviews.Put("The Blues Brothers", "Eye lyked it alot.")

	// check for a specific one
	if !reviews.Has("Les Misérables") {
		fmt.Printf("We've got %d reviews, but Les Misérables ain't one.\n", reviews.Len())
	}

	// oops, this review has a lot of spelling mistakes, let's delete it
	reviews.Del("The Blues Brothers")

	// look up the values associated with some keys
	for _, movie := range []string{"Up!", "Office Space"} {
		if review, ok := reviews.Get(movie); ok {
			fmt.Printf("%s: %s\n", movie, review)
		} else {
			fmt.Printf("%s is unreviewed.\n", movie)
		}
	}

	// iterate over everything
	for movie, review := range reviews.All() {
		fmt.Printf("%s: %q\n", movie, review)
	}
}

// ReviewDB keeps its container behind the module's Mapper interface, so the
// line in OpenReviewDB is the only one to touch when swapping containers
type ReviewDB struct {
	db linmap.Mapper[string, string]
}

func OpenReviewDB() *ReviewDB {
	return &ReviewDB{
		db: linearmap.New[string, string](),
	}
}

func (r *ReviewDB) Put(movie, review string) {
	r.db.Set(movie, review)
}

func (r *ReviewDB) Get(movie string) (string, bool) {
	return r.db.Get(movie)
}

func (r *ReviewDB) Has(movie string) bool {
	return r.db.Has(movie)
}

func (r *ReviewDB) Del(movie string) {
	r.db.Del(movie)
}

func (r *ReviewDB) Len() int {
	return r.db.Len()
}

func (r *ReviewDB) All() iter.Seq2[string, string] {
	return func(yield func(movie, review string) bool) {
		r.db.Range(yield)
	}
}
