// Package models defines the wire records exchanged with the GameStack
// identity and leaderboard services.
//
// Auth records (Session, Token, login/refresh/logout inputs and outputs) come
// from the identity service. Leaderboard records (User, Value, Dimension,
// Statistic, Sort, Filter, Pagination) come from the leaderboard service.
// Values travel as strings tagged with a DataType, so constructors such as
// IntValue and FloatValue format numbers the way the service expects.
package models
