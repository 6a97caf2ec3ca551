// Package capability constructs the optional collaborators specialists may
// use. Every provider is independently optional: a provider that cannot be
// built is logged and left nil, never failing the set as a whole.
package capability

import (
	openaisdk "github.com/openai/openai-go"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
	logx "github.com/napatw/Sarabun-HR-Copilot/pkg/logger"
	qstashx "github.com/napatw/Sarabun-HR-Copilot/pkg/qstash"
	upstashx "github.com/napatw/Sarabun-HR-Copilot/pkg/upstash"
)

// Set carries whichever capabilities could be built. Nil fields mean the
// capability is unavailable; consumers must tolerate that.
type Set struct {
	Data            contractx.DataConnector
	Notifier        contractx.Notifier
	Bias            contractx.BiasAuditor
	Compliance      contractx.ComplianceEngine
	Retrieval       contractx.RetrievalPipeline
	PII             contractx.PIIFilter
	SubjectRequests contractx.SubjectRequestRepository
	Consent         contractx.ConsentRepository
}

// BuildOptions are the external clients and settings the builder may use.
// Zero values disable the corresponding capability.
type BuildOptions struct {
	DatabaseDSN string

	QStash            *qstashx.Client
	NotifyDestination string

	Upstash    *upstashx.Client
	SnippetKey string

	OpenAI     *openaisdk.Client
	EmbedModel string
}

// Build constructs every capability best-effort. Failures are logged at
// warn level and the field stays nil.
func Build(opts BuildOptions) *Set {
	log := logx.Component("capability")
	set := &Set{
		Bias:       NewBiasAuditor(),
		Compliance: NewComplianceEngine(),
		PII:        NewPIIFilter(),
	}

	if opts.DatabaseDSN != "" {
		conn, err := NewPostgresConnector(opts.DatabaseDSN)
		if err != nil {
			log.Warn().Err(err).Msg("data connector unavailable")
		} else {
			set.Data = conn
			set.SubjectRequests = NewSubjectRequestStore(conn.DB())
			set.Consent = NewConsentStore(conn.DB())
		}
	} else {
		log.Debug().Msg("no database dsn, data capabilities disabled")
	}

	if opts.QStash != nil {
		notifier, err := NewQStashNotifier(opts.QStash, opts.NotifyDestination)
		if err != nil {
			log.Warn().Err(err).Msg("notifier unavailable")
		} else {
			set.Notifier = notifier
		}
	}

	if opts.Upstash != nil {
		retriever, err := NewSnippetRetriever(opts.Upstash, opts.SnippetKey, opts.OpenAI, opts.EmbedModel)
		if err != nil {
			log.Warn().Err(err).Msg("retrieval pipeline unavailable")
		} else {
			set.Retrieval = retriever
		}
	}

	return set
}
