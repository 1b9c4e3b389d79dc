// Package scmclient provides the primary entry point for constructing a
// configuration API client that implements the scm.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the scm package. Most
// applications should import scmclient to build a client, then use the
// returned scm.Client to access resource-specific clients, for example
// Addresses(), Tags(), Operations(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/scm-client/pkg/scm"
//	  "github.com/fivetwenty-io/scm-client/pkg/scmclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With an access token you already have:
//	  cli, err := scmclient.New(ctx, &scm.Config{
//	    APIEndpoint: "https://api.strata.paloaltonetworks.com",
//	    AccessToken: "eyJhbGciOi...", // bearer token
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with OAuth2 client credentials. When credentials are provided
//	  // and no token URL is set, the platform default token endpoint is
//	  // used, scoped to the tenant service group.
//	  cli, err = scmclient.New(ctx, &scm.Config{
//	    APIEndpoint:  "https://api.strata.paloaltonetworks.com",
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	    TSGID:        "1234567890",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the scm.Client interface
//	  addresses, err := cli.Addresses().List(ctx, scm.NewQueryParams().WithFolder("Shared"))
//	  if err != nil { log.Fatal(err) }
//	  _ = addresses
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewWithClientCredentials that wrap New with the appropriate configuration.
package scmclient
