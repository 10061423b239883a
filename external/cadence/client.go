package cadence

import (
	"context"
	"fmt"

	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/client"
	"go.uber.org/cadence/workflow"
	"go.uber.org/yarpc"
	"go.uber.org/yarpc/transport/tchannel"
)

const (
	ClientName     = "triage-worker"
	CadenceService = "cadence-frontend"
)

// NewServiceClient connects to the cadence frontend over tchannel
func NewServiceClient(hostPort string) (workflowserviceclient.Interface, error) {
	if hostPort == "" {
		return nil, fmt.Errorf("empty cadence host")
	}

	ch, err := tchannel.NewChannelTransport(tchannel.ServiceName(ClientName))
	if err != nil {
		return nil, fmt.Errorf("setup tchannel: %w", err)
	}
	dispatcher := yarpc.NewDispatcher(yarpc.Config{
		Name: ClientName,
		Outbounds: yarpc.Outbounds{
			CadenceService: {Unary: ch.NewSingleOutbound(hostPort)},
		},
	})
	if err := dispatcher.Start(); err != nil {
		return nil, fmt.Errorf("start yarpc dispatcher: %w", err)
	}

	return workflowserviceclient.New(dispatcher.ClientConfig(CadenceService)), nil
}

// WorkflowClient is the cadence client used by the API to follow up dispatched
// ambulances. All arguments go through the msgpack converter.
type WorkflowClient struct {
	client client.Client
}

func NewWorkflowClient(service workflowserviceclient.Interface, domain string, scope tally.Scope) *WorkflowClient {
	if scope == nil {
		scope = tally.NoopScope
	}

	return &WorkflowClient{
		client: client.NewClient(service, domain, &client.Options{
			MetricsScope:  scope,
			DataConverter: NewMsgPackDataConverter(),
		}),
	}
}

func (c *WorkflowClient) StartWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (*workflow.Execution, error) {
	return c.client.StartWorkflow(ctx, options, workflow, args...)
}

func (c *WorkflowClient) SignalWorkflow(ctx context.Context, workflowID, runID, signalName string, arg interface{}) error {
	return c.client.SignalWorkflow(ctx, workflowID, runID, signalName, arg)
}
