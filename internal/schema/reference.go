package schema

// Reference identifies an entity by id, codename or external_id. id is
// preferred when known.
func Reference() Schema {
	return Object(Props{
		"id":          String(),
		"codename":    String(),
		"external_id": String(),
	}).Strict()
}

// ContinuationToken is the optional paging argument of list tools.
func ContinuationToken() Schema {
	return String().Describe("Continuation token from a previous response to fetch the next page of results. " +
		"Omit it to fetch the first page. When continuation_token in the response is null, there are no more pages.")
}

// UserReference identifies a user by id or by email, never both.
func UserReference() Schema {
	return OneOf(
		Object(Props{"id": String().Describe("User identifier")}, "id").Strict(),
		Object(Props{"email": String().Format("email").Describe("User email address")}, "email").Strict(),
	).Describe("Reference to a user by either their id or email (but not both)")
}

// Empty is the input schema of tools without arguments.
func Empty() Schema {
	return Object(Props{})
}
