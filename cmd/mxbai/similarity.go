package main

import (
	"fmt"

	"github.com/spf13/cobra"

	ai "github.com/bitop-dev/ai-mixedbread"
	"github.com/bitop-dev/ai-mixedbread/mixedbread"
)

func newSimilarityCmd(root *rootOptions) *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "similarity TEXT TEXT",
		Short: "Print the cosine similarity of two texts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := root.client()
			if err != nil {
				return err
			}
			resp, err := ai.EmbedMany(cmd.Context(), ai.EmbedManyRequest{
				Model: client.Embedding(model),
				Input: args,
			})
			if err != nil {
				return err
			}
			sim, err := ai.CosineSimilarity(resp.Vectors[0], resp.Vectors[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", sim)
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", mixedbread.EmbedLargeV1, "embedding model")
	return cmd
}
