package catalog

// buildEntries declares the full component catalog. Templates use {prop}
// placeholders for substituted values and pseudo-tags (Heading, Text, Button,
// Section, Img, Hr, Row, Column) with a {key:value,key:value} style block
// that the render package lowers to plain HTML.
func buildEntries() []Entry {
	return []Entry{
		{
			ID:       "heading",
			Category: "content",
			Template: `<Heading {fontSize:{size}px,color:{color},textAlign:{align},margin:{spacing}}>{title}</Heading>`,
			Props: []PropSpec{
				{Name: "title", Type: PropText, Default: "Heading"},
				{Name: "size", Type: PropNumber, Default: "24"},
				{Name: "color", Type: PropColor, Default: "#1a202c"},
				{Name: "align", Type: PropSelect, Default: "left", Options: []string{"left", "center", "right"}},
				{Name: "spacing", Type: PropSpacing, Default: "16px 0"},
			},
		},
		{
			ID:       "text",
			Category: "content",
			Template: `<Text {fontSize:{size}px,color:{color},textAlign:{align},lineHeight:1.5}>{content}</Text>`,
			Props: []PropSpec{
				{Name: "content", Type: PropTextarea, Default: "Write your text here."},
				{Name: "size", Type: PropNumber, Default: "16"},
				{Name: "color", Type: PropColor, Default: "#2d3748"},
				{Name: "align", Type: PropSelect, Default: "left", Options: []string{"left", "center", "right"}},
			},
		},
		{
			ID:       "button",
			Category: "content",
			Template: `<Button {backgroundColor:{backgroundColor},color:{color},padding:{padding},borderRadius:{radius}px} href="{url}">{label}</Button>`,
			Props: []PropSpec{
				{Name: "label", Type: PropText, Default: "Click me"},
				{Name: "url", Type: PropURL, Default: "https://example.com"},
				{Name: "backgroundColor", Type: PropColor, Default: "#2563eb"},
				{Name: "color", Type: PropColor, Default: "#ffffff"},
				{Name: "padding", Type: PropSpacing, Default: "12px 24px"},
				{Name: "radius", Type: PropNumber, Default: "4"},
			},
		},
		{
			ID:       "image",
			Category: "media",
			Template: `<Img {width:{width},borderRadius:{radius}px} src="{src}" alt="{alt}"/>`,
			Props: []PropSpec{
				{Name: "src", Type: PropURL, Default: "https://placehold.co/600x200"},
				{Name: "alt", Type: PropText, Default: ""},
				{Name: "width", Type: PropText, Default: "100%"},
				{Name: "radius", Type: PropNumber, Default: "0"},
			},
		},
		{
			ID:       "divider",
			Category: "layout",
			Template: `<Hr {borderTop:{height}px solid {color},margin:{spacing}}/>`,
			Props: []PropSpec{
				{Name: "height", Type: PropNumber, Default: "1"},
				{Name: "color", Type: PropColor, Default: "#e2e8f0"},
				{Name: "spacing", Type: PropSpacing, Default: "16px 0"},
			},
		},
		{
			ID:       "spacer",
			Category: "layout",
			Template: `<Section {height:{height}px,fontSize:1px,lineHeight:{height}px}>&nbsp;</Section>`,
			Props: []PropSpec{
				{Name: "height", Type: PropNumber, Default: "24"},
			},
		},
		{
			ID:       "section",
			Category: "layout",
			Template: `<Section {backgroundColor:{backgroundColor},padding:{padding},borderRadius:{radius}px}>{children}</Section>`,
			Props: []PropSpec{
				{Name: "children", Type: PropTextarea, Default: ""},
				{Name: "backgroundColor", Type: PropColor, Default: "#f7fafc"},
				{Name: "padding", Type: PropSpacing, Default: "16px"},
				{Name: "radius", Type: PropNumber, Default: "8"},
			},
		},
		{
			ID:       "two-column",
			Category: "layout",
			Template: `<Row {width:100%}><Column {width:{leftWidth},paddingRight:8px}>{title}</Column><Column {width:{rightWidth},paddingLeft:8px}>{description}</Column></Row>`,
			Props: []PropSpec{
				{Name: "title", Type: PropTextarea, Default: "Left column"},
				{Name: "description", Type: PropTextarea, Default: "Right column"},
				{Name: "leftWidth", Type: PropText, Default: "50%"},
				{Name: "rightWidth", Type: PropText, Default: "50%"},
			},
		},
		{
			ID:       "social",
			Category: "content",
			Template: `<Section {textAlign:{align},padding:{spacing}}><Button {backgroundColor:transparent,color:{color},padding:4px 8px} href="{twitterUrl}">Twitter</Button><Button {backgroundColor:transparent,color:{color},padding:4px 8px} href="{linkedinUrl}">LinkedIn</Button><Button {backgroundColor:transparent,color:{color},padding:4px 8px} href="{githubUrl}">GitHub</Button></Section>`,
			Props: []PropSpec{
				{Name: "twitterUrl", Type: PropURL, Default: "https://twitter.com"},
				{Name: "linkedinUrl", Type: PropURL, Default: "https://linkedin.com"},
				{Name: "githubUrl", Type: PropURL, Default: "https://github.com"},
				{Name: "color", Type: PropColor, Default: "#2563eb"},
				{Name: "align", Type: PropSelect, Default: "center", Options: []string{"left", "center", "right"}},
				{Name: "spacing", Type: PropSpacing, Default: "16px 0"},
			},
		},
		{
			ID:       "footer",
			Category: "content",
			Template: `<Section {padding:24px 16px,textAlign:center,color:{color},fontSize:12px}>{content}</Section>`,
			Props: []PropSpec{
				{Name: "content", Type: PropTextarea, Default: "You received this email because you signed up on our site.\nUnsubscribe at any time."},
				{Name: "color", Type: PropColor, Default: "#718096"},
			},
		},
	}
}
