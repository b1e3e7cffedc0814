package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSESClient struct {
	mock.Mock
}

func (m *MockSESClient) SendRawEmail(input *ses.SendRawEmailInput) (*ses.SendRawEmailOutput, error) {
	args := m.Called(input)
	out, _ := args.Get(0).(*ses.SendRawEmailOutput)
	return out, args.Error(1)
}

func TestMailer_Send(t *testing.T) {
	msg := Message{
		To:             []string{"rh@example.fr", "dg@example.fr"},
		Subject:        "Simulation report",
		Body:           "See attachment",
		AttachmentName: "simulation.xlsx",
		Attachment:     []byte("workbook-bytes"),
	}

	t.Run("sends a raw email with the attachment", func(t *testing.T) {
		client := new(MockSESClient)
		client.On("SendRawEmail", mock.MatchedBy(func(in *ses.SendRawEmailInput) bool {
			raw := string(in.RawMessage.Data)
			return aws.StringValue(in.Source) == "simulator@example.fr" &&
				assert.ObjectsAreEqual([]string{"rh@example.fr", "dg@example.fr"}, aws.StringValueSlice(in.Destinations)) &&
				strings.Contains(raw, "Subject: Simulation report") &&
				strings.Contains(raw, "simulation.xlsx")
		})).Return(&ses.SendRawEmailOutput{MessageId: aws.String("id-1")}, nil).Once()

		err := NewMailer(client, "simulator@example.fr").Send(context.Background(), msg)
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("propagates the SES error", func(t *testing.T) {
		client := new(MockSESClient)
		client.On("SendRawEmail", mock.Anything).Return(nil, errors.New("throttled")).Once()

		err := NewMailer(client, "simulator@example.fr").Send(context.Background(), msg)
		assert.EqualError(t, err, "send email: throttled")
	})

	t.Run("requires a recipient", func(t *testing.T) {
		client := new(MockSESClient)
		err := NewMailer(client, "simulator@example.fr").Send(context.Background(), Message{Subject: "x"})
		assert.EqualError(t, err, "no email recipient")
		client.AssertNotCalled(t, "SendRawEmail", mock.Anything)
	})
}

func TestRecipients(t *testing.T) {
	assert.Equal(t, []string{"a@example.fr", "b@example.fr"}, Recipients(" a@example.fr, ,b@example.fr "))
	assert.Nil(t, Recipients(""))
}
