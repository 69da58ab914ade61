package mailer

import (
	"fmt"
	"sync"

	"github.com/labstack/gommon/log"
)

type Notification struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a single notification. Actual delivery is an external
// collaborator; the default sender only logs.
type Sender interface {
	Send(n *Notification) error
}

type logSender struct{}

func (logSender) Send(n *Notification) error {
	log.Infof("mail to %s: %s", n.To, n.Subject)
	return nil
}

// Mailer drains a buffered queue with a fixed worker pool. Enqueue never
// blocks a request: when the queue is full the notification is dropped and
// the drop is logged.
type Mailer struct {
	queue  chan *Notification
	sender Sender
	from   string
	wg     sync.WaitGroup
}

func New(from string, workers int, sender Sender) *Mailer {
	if sender == nil {
		sender = logSender{}
	}
	m := &Mailer{
		queue:  make(chan *Notification, 100),
		sender: sender,
		from:   from,
	}

	for i := 0; i < workers; i++ {
		m.wg.Add(1)
		go m.worker(i)
	}
	return m
}

func (m *Mailer) worker(id int) {
	defer m.wg.Done()
	for n := range m.queue {
		if err := m.sender.Send(n); err != nil {
			log.Errorf("mail worker %d failed to send to %s: %v", id, n.To, err)
		}
	}
}

func (m *Mailer) Enqueue(n *Notification) {
	select {
	case m.queue <- n:
	default:
		log.Warnf("mail queue full, dropping notification to %s", n.To)
	}
}

// SendReservationConfirmation queues the booking confirmation email.
func (m *Mailer) SendReservationConfirmation(email, fullName, details string) {
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Thank you for making a reservation. Here are your reservation details:\n\n"+
			"%s\n\n"+
			"If you need to make changes to your reservation, please contact us at %s.\n",
		fullName, details, m.from)

	m.Enqueue(&Notification{
		To:      email,
		Subject: "fablabOS: Reservation Confirmation",
		Body:    body,
	})
}

// Shutdown stops accepting work and waits for the pool to drain.
func (m *Mailer) Shutdown() {
	close(m.queue)
	m.wg.Wait()
}
