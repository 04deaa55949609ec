package prompts

// jsonOnlySystemPrompt is shared by every structured flow; the user prompt
// carries the role and the task.
const jsonOnlySystemPrompt = `You are a marketing content assistant. Respond ONLY with a single JSON object that matches the requested schema. Do not wrap it in markdown and do not add commentary.`

// noHyphens is appended to every text flow. It is a style request to the
// model only; nothing checks the output for it.
const noHyphens = "Do not use hyphens in any of the generated text."

const noHyphensOrDashes = "Do not use hyphens or em dashes in any of the generated text."
