// Package mediaapi provides a client for a media catalog REST API.
//
// The backend stores movies and shows and exposes them under a single base
// address (for example http://localhost:8080/api). Every operation issues
// exactly one HTTP request and returns the decoded JSON body untouched.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := mediaapi.NewClient("http://localhost:8080/api", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	query := mediaapi.NewQueryOptions().
//		Add(mediaapi.QueryGenre, "comedy").
//		Add(mediaapi.QuerySort, "title")
//
//	doc, err := client.ListMedia(ctx, query)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	var list mediaapi.MediaList
//	if err := mediaapi.Decode(doc, &list); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// A response outside the 2xx range is reported as *FetchFailedError, which
// carries the operation name and the HTTP status and matches ErrFetchFailed:
//
//	if ffe, ok := mediaapi.AsFetchFailed(err); ok && ffe.IsNotFound() {
//		// Handle missing item
//	}
//
// Transport and JSON decoding errors are wrapped and returned as is.
package mediaapi
