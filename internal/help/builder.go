package help

// New starts help content for name, styled with DefaultStyles.
func New(name string) *ContentBuilder {
	return &ContentBuilder{name: name, styles: DefaultStyles()}
}

// AddCommandFlags adds flags accepted after the command.
func (b *ContentBuilder) AddCommandFlags(flags ...Flag) *ContentBuilder {
	b.commandFlags = append(b.commandFlags, flags...)
	return b
}

// AddCommands adds command entries.
func (b *ContentBuilder) AddCommands(cmds ...Command) *ContentBuilder {
	b.commands = append(b.commands, cmds...)
	return b
}

// AddExamples adds usage examples.
func (b *ContentBuilder) AddExamples(examples ...Example) *ContentBuilder {
	b.examples = append(b.examples, examples...)
	return b
}

// AddFormats adds value format descriptions.
func (b *ContentBuilder) AddFormats(formats ...Format) *ContentBuilder {
	b.formats = append(b.formats, formats...)
	return b
}

// AddGlobalFlags adds flags accepted before the command.
func (b *ContentBuilder) AddGlobalFlags(flags ...Flag) *ContentBuilder {
	b.globalFlags = append(b.globalFlags, flags...)
	return b
}

// AddPositionals adds positional arguments.
func (b *ContentBuilder) AddPositionals(positionals ...Positional) *ContentBuilder {
	b.positionals = append(b.positionals, positionals...)
	return b
}

// WithDescription sets the leading description.
func (b *ContentBuilder) WithDescription(desc string) *ContentBuilder {
	b.description = desc
	return b
}

// WithStyles replaces the styles used by Render.
func (b *ContentBuilder) WithStyles(s Styles) *ContentBuilder {
	b.styles = s
	return b
}

// WithUsage sets the usage line.
func (b *ContentBuilder) WithUsage(usage string) *ContentBuilder {
	b.usage = usage
	return b
}
