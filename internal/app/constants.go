package app

// MinPlayersToStartGame is the number of occupied seats required before the
// owner may start, with bots filling the rest of the table.
const MinPlayersToStartGame = 1
