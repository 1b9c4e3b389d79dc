// Package scm defines the public types and interfaces for the Strata Cloud
// Manager configuration API client: resource models, typed errors keyed by
// HTTP status, query parameters with the folder/snippet/device container
// selector, offset/limit pagination helpers, and the commit/job types used
// for candidate-configuration pushes.
//
// Construct a concrete client with the scmclient package:
//
//	client, err := scmclient.New(ctx, &scm.Config{
//		APIEndpoint:  "https://api.strata.example.com",
//		ClientID:     os.Getenv("SCM_CLIENT_ID"),
//		ClientSecret: os.Getenv("SCM_CLIENT_SECRET"),
//		TSGID:        os.Getenv("SCM_TSG_ID"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	addresses, err := client.Addresses().List(ctx,
//		scm.NewQueryParams().WithFolder("Texas"))
//
// All listing operations materialize the whole collection: the client walks
// the offset/limit cursor until the server runs out of pages. Commit
// operations return a job reference; CommitAndWait polls the job until it
// reaches a terminal state or the caller's timeout elapses.
package scm
