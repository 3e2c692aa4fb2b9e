package search

// Fixed guidance messages. Out-of-scope and no-results paths never look like
// errors; they are delivered through the normal answer channel.

const OutOfScopeMessage = "I'm a specialized search assistant for your assigned BigSpring training materials " +
	"and practice history. I can help you find information from your product guides, " +
	"training videos, and review your past submissions and feedback. " +
	"Please ask a question related to your sales training content."

const NoKnowledgeResultsMessage = "I couldn't find any specific information about that in your assigned training materials. " +
	"This could mean the content isn't part of your currently assigned Plays, " +
	"or the topic may belong to a different company's materials. " +
	"Try rephrasing your question or check with your manager about accessing additional training content."

const NoHistoryResultsMessage = "I couldn't find any matching content in your practice submissions. " +
	"Make sure you've completed practice reps with submissions to search through."

// FallbackDisclaimer is prepended before any generated text on the
// ungrounded general-professional path.
const FallbackDisclaimer = "**Note:** This response is based on general professional knowledge, " +
	"not your specific BigSpring training materials.\n\n"
