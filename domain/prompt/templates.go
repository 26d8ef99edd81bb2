package prompt

// Templates for the structured chat agent's instruction prompt. The
// assembled system prompt is always prefix, tool list, format
// instructions, suffix, joined by blank lines in that order.

// Prefix opens the system prompt before the tool catalogue.
const Prefix = `Respond to the human as helpfully and accurately as possible. You have access to the following tools:`

// FormatInstructions tells the model how to interleave thoughts,
// actions, and the final answer. The %s slot receives the comma-joined
// list of registered tool names.
const FormatInstructions = `Use the following format:

Question: the input question you must answer
Thought: you should always think about what to do
Action: the action to take, must be one of [%s]
Action Input: the input to the action
Observation: the result of the action
... (this Thought/Action/Action Input/Observation can repeat N times)
Thought: I now know the final answer
Final Answer: the final answer to the original input question`

// Suffix closes the system prompt.
const Suffix = `Begin! Reminder to always use the exact characters ` + "`Final Answer`" + ` when responding.`

// HumanMessageTemplate renders the user turn: the question followed by
// the scratchpad of this session's recorded steps.
const HumanMessageTemplate = "%s\n\n%s"

// CorrectiveTemplate is the re-prompt sent after a parse failure. It
// quotes the malformed reply and restates the expected format; the
// slots are the malformed output and the comma-joined tool names.
const CorrectiveTemplate = `Your previous reply could not be parsed:

%s

Reply again, following the format exactly. Either provide

Action: one of [%s]
Action Input: the input to the action

or provide

Final Answer: your final answer to the question`
