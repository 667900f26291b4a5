package llm

// charsPerToken is the average number of characters per token.
// Real tokenizers vary; 4 chars/token is close enough for logging prompt size.
const charsPerToken = 4

// EstimateTokens returns a rough token count for a string.
func EstimateTokens(s string) int {
	if len(s) == 0 {
		return 0
	}
	return (len(s) + charsPerToken - 1) / charsPerToken // round up
}

// EstimateRequestTokens returns the estimated prompt size of a request,
// including per-message overhead for the two messages.
func EstimateRequestTokens(req Request) int {
	const perMessage = 4 // role tokens, delimiters
	return 2*perMessage + EstimateTokens(req.System) + EstimateTokens(req.User)
}
