package main

import (
	"fmt"

	"github.com/k0kubun/pp"

	"github.com/uzushio/tinysearch"
)

var sampleDocuments = []struct {
	title   string
	content string
}{
	{
		title:   "Go",
		content: "Go is a statically typed compiled language with lightweight concurrency. The gopher community ships search engines, servers and tooling.",
	},
	{
		title:   "Inverted Index",
		content: "An inverted index maps each term to the documents containing it, with frequencies and positions for ranking and snippets.",
	},
	{
		title:   "TF-IDF",
		content: "TF-IDF weighs term frequency against document frequency, so rare terms dominate the ranking while ubiquitous terms score zero.",
	},
	{
		content: "Untitled note: search engines highlight matched terms inside a short context snippet.",
	},
}

var demoQueries = []string{
	"search engines",
	"inverted index ranking",
	"term frequency",
	"the a an",
	"gopher",
}

func main() {
	engine := tinysearch.NewEngine()
	for _, doc := range sampleDocuments {
		id := engine.AddDocument(doc.content, doc.title)
		fmt.Printf("indexed document %d: %s\n", id, doc.title)
	}

	pp.Println(engine.Stats())

	for _, query := range demoQueries {
		fmt.Printf("\n=== query: %q\n", query)
		results := engine.Search(query)
		if len(results) == 0 {
			fmt.Println("no results")
			continue
		}
		for rank, r := range results {
			fmt.Printf("%d. [%d] %s (score %.4f)\n   %s\n", rank+1, r.DocumentID, r.Title, r.Score, r.Snippet)
		}
	}
}
