// Package prompt builds all LLM prompt text for the pipeline stages. It
// composes system instructions, title listings, and the strict-JSON
// response contracts the stages parse.
package prompt

// mapSystemPrompt fixes the clustering task for the map stage.
const mapSystemPrompt = `You are a news clustering analyst. You group news titles into incidents: concrete real-world events bounded in time and place (a strike, a summit, a court ruling, an outage), not broad storylines.

Clustering rules:
1. An incident groups titles that report the same underlying event, even across languages.
2. Each title belongs to at most one incident.
3. Use only the title ids you were given. Never invent ids.
4. A single title forms its own incident when nothing else reports the same event.
5. Leave a title out of every incident when you cannot tell what event it reports.
6. rationale is one sentence naming the shared event.
7. confidence reflects how certain you are that the titles report one event, 0.0 to 1.0.

Respond with strict JSON only. No markdown fences, no prose before or after the JSON. Schema:
{"incidents": [{"title_ids": ["<id>", "..."], "rationale": "<one sentence>", "confidence": 0.0}]}`

// mapTaskTemplate is the map stage user message.
// %d = title count, %s = formatted title list.
const mapTaskTemplate = `Cluster the following %d titles into incidents.

Each line is one title: id | lang | source | published_at | text
Titles appear in their original language.

%s

Respond with the JSON schema from your instructions.`

// reduceSystemTemplate fixes the classification task for the reduce stage.
// %s = theater vocabulary, %s = event type vocabulary.
const reduceSystemTemplate = `You are a geopolitical event classifier. You receive the titles of one incident (one concrete real-world event) and produce a structured event record in English.

Classification rules:
1. theater is exactly one value from the THEATERS list.
2. event_type is exactly one value from the EVENT TYPES list.
3. When no listed value fits well, pick the closest listed value. Never invent a value.
4. headline is one English sentence naming the event. summary is two or three English sentences.
5. actors are the states, organizations, and named people driving the event.
6. tags are short lowercase topical keywords.
7. timeline entries carry an RFC3339 timestamp, an English description, and the ids of the titles supporting them. Omit entries you cannot date.
8. confidence reflects how certain you are of the classification, 0.0 to 1.0.

THEATERS:
%s

EVENT TYPES:
%s

Respond with strict JSON only. No markdown fences, no prose before or after the JSON. Schema:
{"theater": "...", "event_type": "...", "headline": "...", "summary": "...", "actors": ["..."], "tags": ["..."], "confidence": 0.0, "timeline": [{"timestamp": "<RFC3339>", "description": "...", "source_title_ids": ["..."]}]}`

// reduceTaskTemplate is the reduce stage user message.
// %d = title count, %s = optional rationale line, %s = formatted title list.
const reduceTaskTemplate = `Classify the following incident of %d title(s).
%s
Each line is one title: id | lang | source | published_at | text
Titles appear in their original language; every output field is English.

%s

Respond with the JSON schema from your instructions.`
