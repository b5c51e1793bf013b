// Package metrics - metrics/cloudwatch.go
package metrics

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"go-event-portal/logger"
)

// Publisher forwards backend call observations to an external sink.
type Publisher interface {
	PublishBackendCall(operation, outcome string, elapsed time.Duration)
}

// CloudWatchPublisher pushes backend call latency to CloudWatch.
type CloudWatchPublisher struct {
	client    cloudwatchiface.CloudWatchAPI
	namespace string
}

// NewCloudWatchPublisher builds a publisher from the default AWS credential
// chain.
func NewCloudWatchPublisher(namespace string) (*CloudWatchPublisher, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, err
	}
	return NewCloudWatchPublisherWithClient(cloudwatch.New(sess), namespace), nil
}

// NewCloudWatchPublisherWithClient uses an existing CloudWatch client.
func NewCloudWatchPublisherWithClient(client cloudwatchiface.CloudWatchAPI, namespace string) *CloudWatchPublisher {
	return &CloudWatchPublisher{client: client, namespace: namespace}
}

// PublishBackendCall pushes a latency datum dimensioned by operation and
// outcome.
func (p *CloudWatchPublisher) PublishBackendCall(operation, outcome string, elapsed time.Duration) {
	p.putMetric("BackendLatencyMs", float64(elapsed.Milliseconds()), cloudwatch.StandardUnitMilliseconds, operation, outcome)
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func (p *CloudWatchPublisher) putMetric(metricName string, value float64, unit, operation, outcome string) {
	_, err := p.client.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(p.namespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Dimensions: []*cloudwatch.Dimension{
					{Name: aws.String("Operation"), Value: aws.String(operation)},
					{Name: aws.String("Outcome"), Value: aws.String(outcome)},
				},
				Timestamp: aws.Time(time.Now()),
				Value:     aws.Float64(value),
				Unit:      aws.String(unit),
			},
		},
	})

	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
