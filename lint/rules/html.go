package rules

// Built-in HTML 4.01 and HTML5 tables.

var globalAttrs = []string{
	"accesskey", "autocapitalize", "autofocus", "class", "contenteditable", "dir",
	"draggable", "enterkeyhint", "hidden", "id", "inert", "inputmode", "is", "itemid",
	"itemprop", "itemref", "itemscope", "itemtype", "lang", "nonce", "part", "popover",
	"role", "slot", "spellcheck", "style", "tabindex", "title", "translate", "xml:lang",
	"xmlns",

	"onabort", "onblur", "oncancel", "oncanplay", "onchange", "onclick", "onclose",
	"oncontextmenu", "oncopy", "oncut", "ondblclick", "ondrag", "ondragend", "ondragenter",
	"ondragleave", "ondragover", "ondragstart", "ondrop", "onerror", "onfocus", "oninput",
	"oninvalid", "onkeydown", "onkeypress", "onkeyup", "onload", "onmousedown",
	"onmouseenter", "onmouseleave", "onmousemove", "onmouseout", "onmouseover",
	"onmouseup", "onpaste", "onreset", "onresize", "onscroll", "onselect", "onsubmit",
	"ontoggle", "onwheel",
}

var htmlElements = map[string][]string{
	"a":          {"charset", "coords", "download", "href", "hreflang", "name", "ping", "referrerpolicy", "rel", "rev", "shape", "target", "type"},
	"abbr":       nil,
	"acronym":    nil,
	"address":    nil,
	"applet":     {"align", "alt", "archive", "code", "codebase", "height", "hspace", "name", "object", "vspace", "width"},
	"area":       {"alt", "coords", "download", "href", "hreflang", "nohref", "ping", "referrerpolicy", "rel", "shape", "target", "type"},
	"article":    nil,
	"aside":      nil,
	"audio":      {"autoplay", "controls", "crossorigin", "loop", "muted", "preload", "src"},
	"b":          nil,
	"base":       {"href", "target"},
	"basefont":   {"color", "face", "size"},
	"bdi":        nil,
	"bdo":        nil,
	"big":        nil,
	"blockquote": {"cite"},
	"body":       {"alink", "background", "bgcolor", "link", "text", "vlink", "onafterprint", "onbeforeprint", "onbeforeunload", "onhashchange", "onmessage", "onoffline", "ononline", "onpagehide", "onpageshow", "onpopstate", "onstorage", "onunload"},
	"br":         {"clear"},
	"button":     {"disabled", "form", "formaction", "formenctype", "formmethod", "formnovalidate", "formtarget", "name", "popovertarget", "popovertargetaction", "type", "value"},
	"canvas":     {"height", "width"},
	"caption":    {"align"},
	"center":     nil,
	"cite":       nil,
	"code":       nil,
	"col":        {"align", "char", "charoff", "span", "valign", "width"},
	"colgroup":   {"align", "char", "charoff", "span", "valign", "width"},
	"data":       {"value"},
	"datalist":   nil,
	"dd":         nil,
	"del":        {"cite", "datetime"},
	"details":    {"name", "open"},
	"dfn":        nil,
	"dialog":     {"open"},
	"dir":        {"compact"},
	"div":        {"align"},
	"dl":         {"compact"},
	"dt":         nil,
	"em":         nil,
	"embed":      {"height", "src", "type", "width"},
	"fieldset":   {"disabled", "form", "name"},
	"figcaption": nil,
	"figure":     nil,
	"font":       {"color", "face", "size"},
	"footer":     nil,
	"form":       {"accept", "accept-charset", "action", "autocomplete", "enctype", "method", "name", "novalidate", "rel", "target"},
	"frame":      {"frameborder", "longdesc", "marginheight", "marginwidth", "name", "noresize", "scrolling", "src"},
	"frameset":   {"cols", "rows", "onunload"},
	"h1":         {"align"},
	"h2":         {"align"},
	"h3":         {"align"},
	"h4":         {"align"},
	"h5":         {"align"},
	"h6":         {"align"},
	"head":       {"profile"},
	"header":     nil,
	"hgroup":     nil,
	"hr":         {"align", "noshade", "size", "width"},
	"html":       {"manifest", "version"},
	"i":          nil,
	"iframe":     {"align", "allow", "allowfullscreen", "frameborder", "height", "loading", "longdesc", "marginheight", "marginwidth", "name", "referrerpolicy", "sandbox", "scrolling", "src", "srcdoc", "width"},
	"img":        {"align", "alt", "border", "crossorigin", "decoding", "fetchpriority", "height", "hspace", "ismap", "loading", "longdesc", "name", "referrerpolicy", "sizes", "src", "srcset", "usemap", "vspace", "width"},
	"input":      {"accept", "align", "alt", "autocomplete", "checked", "dirname", "disabled", "form", "formaction", "formenctype", "formmethod", "formnovalidate", "formtarget", "height", "ismap", "list", "max", "maxlength", "min", "minlength", "multiple", "name", "pattern", "placeholder", "popovertarget", "popovertargetaction", "readonly", "required", "size", "src", "step", "type", "usemap", "value", "width"},
	"ins":        {"cite", "datetime"},
	"isindex":    {"prompt"},
	"kbd":        nil,
	"keygen":     {"challenge", "disabled", "form", "keytype", "name"},
	"label":      {"for", "form"},
	"legend":     {"align"},
	"li":         {"type", "value"},
	"link":       {"as", "blocking", "charset", "crossorigin", "disabled", "fetchpriority", "href", "hreflang", "imagesizes", "imagesrcset", "integrity", "media", "referrerpolicy", "rel", "rev", "sizes", "target", "type"},
	"main":       nil,
	"map":        {"name"},
	"mark":       nil,
	"math":       {"display"},
	"menu":       {"compact"},
	"meta":       {"charset", "content", "http-equiv", "media", "name", "scheme"},
	"meter":      {"high", "low", "max", "min", "optimum", "value"},
	"nav":        nil,
	"noframes":   nil,
	"noscript":   nil,
	"object":     {"align", "archive", "border", "classid", "codebase", "codetype", "data", "declare", "form", "height", "hspace", "name", "standby", "type", "usemap", "vspace", "width"},
	"ol":         {"compact", "reversed", "start", "type"},
	"optgroup":   {"disabled", "label"},
	"option":     {"disabled", "label", "selected", "value"},
	"output":     {"for", "form", "name"},
	"p":          {"align"},
	"param":      {"name", "type", "value", "valuetype"},
	"picture":    nil,
	"pre":        {"width"},
	"progress":   {"max", "value"},
	"q":          {"cite"},
	"rb":         nil,
	"rp":         nil,
	"rt":         nil,
	"rtc":        nil,
	"ruby":       nil,
	"s":          nil,
	"samp":       nil,
	"script":     {"async", "blocking", "charset", "crossorigin", "defer", "event", "for", "fetchpriority", "integrity", "language", "nomodule", "referrerpolicy", "src", "type"},
	"search":     nil,
	"section":    nil,
	"select":     {"autocomplete", "disabled", "form", "multiple", "name", "required", "size"},
	"slot":       {"name"},
	"small":      nil,
	"source":     {"height", "media", "sizes", "src", "srcset", "type", "width"},
	"span":       nil,
	"strike":     nil,
	"strong":     nil,
	"style":      {"blocking", "media", "type"},
	"sub":        nil,
	"summary":    nil,
	"sup":        nil,
	"svg":        {"height", "preserveaspectratio", "version", "viewbox", "width", "x", "y"},
	"table":      {"align", "bgcolor", "border", "cellpadding", "cellspacing", "frame", "rules", "summary", "width"},
	"tbody":      {"align", "char", "charoff", "valign"},
	"td":         {"abbr", "align", "axis", "bgcolor", "char", "charoff", "colspan", "headers", "height", "nowrap", "rowspan", "scope", "valign", "width"},
	"template":   {"shadowrootclonable", "shadowrootdelegatesfocus", "shadowrootmode"},
	"textarea":   {"autocomplete", "cols", "dirname", "disabled", "form", "maxlength", "minlength", "name", "placeholder", "readonly", "required", "rows", "wrap"},
	"tfoot":      {"align", "char", "charoff", "valign"},
	"th":         {"abbr", "align", "axis", "bgcolor", "char", "charoff", "colspan", "headers", "height", "nowrap", "rowspan", "scope", "valign", "width"},
	"thead":      {"align", "char", "charoff", "valign"},
	"time":       {"datetime"},
	"title":      nil,
	"tr":         {"align", "bgcolor", "char", "charoff", "valign"},
	"track":      {"default", "kind", "label", "src", "srclang"},
	"tt":         nil,
	"u":          nil,
	"ul":         {"compact", "type"},
	"var":        nil,
	"video":      {"autoplay", "controls", "crossorigin", "height", "loop", "muted", "playsinline", "poster", "preload", "src", "width"},
	"wbr":        nil,
}

var optionalEndElements = []string{
	"body", "colgroup", "dd", "dt", "head", "html", "li", "optgroup", "option", "p",
	"rb", "rp", "rt", "rtc", "tbody", "td", "tfoot", "th", "thead", "tr",
}

var emptyElements = []string{
	"area", "base", "basefont", "br", "col", "embed", "frame", "hr", "img", "input",
	"isindex", "keygen", "link", "meta", "param", "source", "track", "wbr",
}
