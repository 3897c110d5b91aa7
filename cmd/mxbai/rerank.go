package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	ai "github.com/bitop-dev/ai-mixedbread"
	"github.com/bitop-dev/ai-mixedbread/mixedbread"
)

type rerankOptions struct {
	model        string
	query        string
	topN         int
	objects      bool
	rankFields   []string
	returnInput  bool
	rewriteQuery bool
}

func newRerankCmd(root *rootOptions) *cobra.Command {
	opts := &rerankOptions{}

	cmd := &cobra.Command{
		Use:   "rerank --query QUERY DOCUMENT...",
		Short: "Rank documents by relevance to a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.query == "" {
				return errors.New("--query is required")
			}
			client, err := root.client()
			if err != nil {
				return err
			}
			model := client.Reranking(opts.model)

			var rows [][]string
			if opts.objects {
				docs, err := parseObjectDocuments(args)
				if err != nil {
					return err
				}
				rows, err = rerankRows(cmd.Context(), model, opts, docs, func(d map[string]any) string {
					b, _ := json.Marshal(d)
					return string(b)
				})
				if err != nil {
					return err
				}
			} else {
				rows, err = rerankRows(cmd.Context(), model, opts, args, func(d string) string { return d })
				if err != nil {
					return err
				}
			}

			renderTable(cmd, []string{"RANK", "INDEX", "SCORE", "DOCUMENT"}, rows)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.model, "model", "m", mixedbread.RerankLargeV2, "reranking model")
	flags.StringVarP(&opts.query, "query", "q", "", "query to rank against")
	flags.IntVarP(&opts.topN, "top-n", "n", 0, "only return the best N documents")
	flags.BoolVar(&opts.objects, "objects", false, "documents are JSON objects")
	flags.StringSliceVar(&opts.rankFields, "rank-field", nil, "object fields to rank on (repeatable)")
	flags.BoolVar(&opts.returnInput, "return-input", false, "ask the API to echo the documents")
	flags.BoolVar(&opts.rewriteQuery, "rewrite-query", false, "let the API rewrite the query")

	return cmd
}

func rerankRows[T any](ctx context.Context, model mixedbread.ModelRef, opts *rerankOptions, docs []T, render func(T) string) ([][]string, error) {
	resp, err := ai.Rerank(ctx, ai.RerankRequest[T]{
		Model:     model,
		Query:     opts.query,
		Documents: docs,
		TopN:      opts.topN,
		ProviderOptions: map[string]any{
			mixedbread.ProviderName: mixedbread.RerankingOptions{
				ReturnInput:  opts.returnInput,
				RewriteQuery: opts.rewriteQuery,
				RankFields:   opts.rankFields,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	rows := make([][]string, len(resp.Ranking))
	for i, r := range resp.Ranking {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.OriginalIndex),
			strconv.FormatFloat(r.Score, 'f', 4, 64),
			truncate(render(r.Document), 64),
		}
	}
	return rows, nil
}

func parseObjectDocuments(args []string) ([]map[string]any, error) {
	docs := make([]map[string]any, len(args))
	for i, arg := range args {
		if err := json.Unmarshal([]byte(arg), &docs[i]); err != nil {
			return nil, fmt.Errorf("document %d is not a JSON object: %w", i, err)
		}
		if docs[i] == nil {
			return nil, fmt.Errorf("document %d is not a JSON object", i)
		}
	}
	return docs, nil
}
