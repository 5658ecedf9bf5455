// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dashclient is a polling consumer of the vote and game endpoints.

	p := dashclient.New("http://localhost:4000")
	err := p.Run(ctx, func(s dashclient.State) {
		fmt.Println(s.Line())
	})

Votes are fetched every 5 seconds and the game every 10 seconds, on separate
tickers. Nothing is coordinated between the two or with in-flight requests,
so the displayed state is whatever response arrived last. Failures are kept
in State and retried on the next tick.
*/
package dashclient
