package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

const defaultReasoningModel = "gpt-5"

// ResponsesClient uses the responses endpoint, which accepts a reasoning
// effort and an output verbosity and returns the text in output_text.
type ResponsesClient struct {
	client    openai.Client
	model     string
	effort    string
	verbosity string
}

func NewResponsesClient(apiKey, model, effort, verbosity string) *ResponsesClient {
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if model == "" {
		model = defaultReasoningModel
	}
	return &ResponsesClient{
		client:    openai.NewClient(opts...),
		model:     model,
		effort:    effort,
		verbosity: verbosity,
	}
}

func (c *ResponsesClient) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.Responses.New(ctx, c.params(req))
	if err != nil {
		return "", fmt.Errorf("openai responses: %w", err)
	}
	text := resp.OutputText()
	if text == "" {
		return "", fmt.Errorf("openai responses: %w", errEmptyCompletion)
	}
	return text, nil
}

func (c *ResponsesClient) params(req Request) responses.ResponseNewParams {
	params := responses.ResponseNewParams{
		Model:        shared.ResponsesModel(c.model),
		Instructions: openai.String(req.System),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(req.User),
		},
	}
	if c.effort != "" {
		params.Reasoning = shared.ReasoningParam{Effort: shared.ReasoningEffort(c.effort)}
	}
	if c.verbosity != "" {
		params.Text = responses.ResponseTextConfigParam{
			Verbosity: responses.ResponseTextConfigVerbosity(c.verbosity),
		}
	}
	return params
}
