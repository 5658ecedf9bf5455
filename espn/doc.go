/*
Package espn is a small client for the public ESPN NFL endpoints.

It fetches three documents and decodes them into typed structs:

  - Summary: header, competitors, situation, drives, leaders, injuries, boxscore
  - PlayByPlay: the cdn play list (gamepackageJSON.plays)
  - Roster: one team's athletes, grouped by unit

Only the fields the game feed reads are declared. Scalars ESPN sends as
either numbers or strings decode through Flex.

	c := espn.New(summaryURL, pbpURL, rosterURL, 10*time.Second)
	sum, err := c.Summary(ctx, "401772988")

Non-2xx responses return *StatusError.
*/
package espn
