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

// NewAddressesCommand creates the address command group
func NewAddressesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "address",
		Aliases: []string{"addresses"},
		Short:   "Manage address objects",
		Long:    "List and manage address objects in the configuration hierarchy",
	}

	cmd.AddCommand(newAddressesListCommand())
	cmd.AddCommand(newAddressesGetCommand())
	cmd.AddCommand(newAddressesCreateCommand())
	cmd.AddCommand(newAddressesDeleteCommand())

	return cmd
}

func newAddressesListCommand() *cobra.Command {
	var (
		folder  string
		snippet string
		device  string
		name    string
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List address objects",
		Long:  "List address objects in a folder, snippet, or device",
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

			addresses, err := client.Addresses().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list addresses: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(addresses)
			case OutputFormatYAML:
				return renderYAML(addresses)
			default:
				if len(addresses) == 0 {
					fmt.Println("No addresses found")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Value", "Container", "Tags")

				for _, address := range addresses {
					_ = table.Append(address.Name, addressValue(&address),
						container(address.Folder, address.Snippet, address.Device),
						valueOrDash(joinTags(address.Tags)))
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

func newAddressesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ADDRESS_ID",
		Short: "Get address details",
		Long:  "Display detailed information about a specific address object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			address, err := client.Addresses().Get(ctx, args[0])
			if err != nil {
				if scm.IsNotFound(err) {
					return fmt.Errorf("%w: %s", ErrAddressNotFound, args[0])
				}

				return fmt.Errorf("failed to get address: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(address)
			case OutputFormatYAML:
				return renderYAML(address)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", address.ID)
				_ = table.Append("Name", address.Name)
				_ = table.Append("Value", addressValue(address))
				_ = table.Append("Container", container(address.Folder, address.Snippet, address.Device))
				_ = table.Append("Description", valueOrDash(address.Description))
				_ = table.Append("Tags", valueOrDash(joinTags(address.Tags)))
				_ = table.Render()
			}

			return nil
		},
	}
}

func newAddressesCreateCommand() *cobra.Command {
	var (
		folder      string
		snippet     string
		device      string
		description string
		ipNetmask   string
		ipRange     string
		fqdn        string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an address object",
		Long:  "Create an address object with exactly one value (--ip-netmask, --ip-range, or --fqdn)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			request := &scm.AddressCreateRequest{
				Name:        args[0],
				Description: description,
				Tags:        tags,
				IPNetmask:   ipNetmask,
				IPRange:     ipRange,
				FQDN:        fqdn,
				Folder:      folder,
				Snippet:     snippet,
				Device:      device,
			}

			address, err := client.Addresses().Create(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to create address: %w", err)
			}

			fmt.Printf("Created address %s (%s)\n", address.Name, address.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "", "folder to create the object in")
	cmd.Flags().StringVar(&snippet, "snippet", "", "snippet to create the object in")
	cmd.Flags().StringVar(&device, "device", "", "device to create the object in")
	cmd.Flags().StringVar(&description, "description", "", "object description")
	cmd.Flags().StringVar(&ipNetmask, "ip-netmask", "", "IP address with CIDR notation")
	cmd.Flags().StringVar(&ipRange, "ip-range", "", "IP address range")
	cmd.Flags().StringVar(&fqdn, "fqdn", "", "fully qualified domain name")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag to attach (repeatable)")

	return cmd
}

func newAddressesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ADDRESS_ID",
		Short: "Delete an address object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			if err := client.Addresses().Delete(ctx, args[0]); err != nil {
				if scm.IsNotFound(err) {
					return fmt.Errorf("%w: %s", ErrAddressNotFound, args[0])
				}

				return fmt.Errorf("failed to delete address: %w", err)
			}

			fmt.Printf("Deleted address %s\n", args[0])

			return nil
		},
	}
}

// addressValue formats the one value field an address carries.
func addressValue(address *scm.Address) string {
	switch {
	case address.IPNetmask != "":
		return address.IPNetmask
	case address.IPRange != "":
		return address.IPRange
	case address.IPWildcard != "":
		return address.IPWildcard
	case address.FQDN != "":
		return address.FQDN
	}

	return "-"
}
