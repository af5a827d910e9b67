package model

import "time"

// DefaultTemplate returns the starter document every new page is created from.
// Each call returns an independent copy stamped with now.
func DefaultTemplate(now time.Time) *Document {
	return &Document{
		ID:           "default",
		Title:        "Technology Overview",
		Subtitle:     "An introduction to the core technologies covered in the bootcamp",
		Category:     "General",
		LastModified: now,
		Blocks: []*Block{
			{ID: "intro-heading", Size: SizeFull, Order: 0, Payload: &HeadingPayload{Content: "Overview", Level: 2}},
			{ID: "intro-text", Size: SizeFull, Order: 1, Payload: &TextPayload{
				Content: "This technology plays a central role in building smart factories and automation systems. " +
					"You will work hands-on with tools used on real production floors.\n\n" +
					"See the key features and use cases below.",
			}},
			{ID: "divider-1", Size: SizeFull, Order: 2, Payload: &DividerPayload{}},
			{ID: "features-heading", Size: SizeFull, Order: 3, Payload: &HeadingPayload{Content: "Key Features", Level: 2}},
			{ID: "features-list", Size: SizeLarge, Order: 4, Payload: &ListPayload{Items: []string{
				"Real-time data collection and processing",
				"Communication and integration between systems",
				"Automated control and monitoring",
				"Scalable architecture",
			}}},
			{ID: "demo-heading", Size: SizeFull, Order: 5, Payload: &HeadingPayload{Content: "Demo Video", Level: 2}},
			{ID: "demo-video", Size: SizeLarge, Order: 6, Payload: &VideoPayload{Title: "Technology demo"}},
			{ID: "code-heading", Size: SizeFull, Order: 7, Payload: &HeadingPayload{Content: "Sample Code", Level: 2}},
			{ID: "sample-code", Size: SizeLarge, Order: 8, Payload: &CodePayload{
				Content:  "// example\nconst initialize = async () => {\n  const connection = await connect();\n  console.log(\"connected\");\n  return connection;\n};",
				Language: "javascript",
			}},
			{ID: "reference-heading", Size: SizeFull, Order: 9, Payload: &HeadingPayload{Content: "References", Level: 2}},
			{ID: "reference-image", Size: SizeLarge, Order: 10, Payload: &ImagePayload{
				Alt:     "Reference diagram",
				Caption: "System architecture diagram",
			}},
		},
	}
}
