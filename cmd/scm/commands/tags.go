package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fivetwenty-io/scm-client/pkg/scm"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTagsCommand creates the tag command group
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tag",
		Aliases: []string{"tags"},
		Short:   "Manage tag objects",
		Long:    "List and manage tag objects in the configuration hierarchy",
	}

	cmd.AddCommand(newTagsListCommand())
	cmd.AddCommand(newTagsGetCommand())
	cmd.AddCommand(newTagsDeleteCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	var (
		folder  string
		snippet string
		device  string
		name    string
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tag objects",
		Long:  "List tag objects in a folder, snippet, or device",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			params, err := queryParamsFromFlags(folder, snippet, device, name, filters)
			if err != nil {
				return err
			}

			tags, err := client.Tags().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(tags)
			case OutputFormatYAML:
				return renderYAML(tags)
			default:
				if len(tags) == 0 {
					fmt.Println("No tags found")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Color", "Container", "Comments")

				for _, tag := range tags {
					_ = table.Append(tag.Name, valueOrDash(tag.Color),
						container(tag.Folder, tag.Snippet, tag.Device),
						valueOrDash(tag.Comments))
				}

				_ = table.Render()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "", "folder containing the objects")
	cmd.Flags().StringVar(&snippet, "snippet", "", "snippet containing the objects")
	cmd.Flags().StringVar(&device, "device", "", "device containing the objects")
	cmd.Flags().StringVar(&name, "name", "", "filter by exact name")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "field filter as field=value[,value...]")

	return cmd
}

func newTagsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TAG_ID",
		Short: "Get tag details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			tag, err := client.Tags().Get(ctx, args[0])
			if err != nil {
				if scm.IsNotFound(err) {
					return fmt.Errorf("%w: %s", ErrTagNotFound, args[0])
				}

				return fmt.Errorf("failed to get tag: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(tag)
			case OutputFormatYAML:
				return renderYAML(tag)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", tag.ID)
				_ = table.Append("Name", tag.Name)
				_ = table.Append("Color", valueOrDash(tag.Color))
				_ = table.Append("Container", container(tag.Folder, tag.Snippet, tag.Device))
				_ = table.Append("Comments", valueOrDash(tag.Comments))
				_ = table.Render()
			}

			return nil
		},
	}
}

func newTagsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TAG_ID",
		Short: "Delete a tag object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			if err := client.Tags().Delete(ctx, args[0]); err != nil {
				if scm.IsNotFound(err) {
					return fmt.Errorf("%w: %s", ErrTagNotFound, args[0])
				}

				return fmt.Errorf("failed to delete tag: %w", err)
			}

			fmt.Printf("Deleted tag %s\n", args[0])

			return nil
		},
	}
}
