package page

import "fmt"

// skeleton is the fixed HTML document wrapped around every message. The
// single %s verb marks the substitution point; the skeleton contains no
// other formatting verbs, so message content passes through fmt untouched.
const skeleton = `
        <html>
        <head lang> 
            <meta charset="utf-8">
            <title>Index</title>
        </head>
        <body>
            <div style='font-size:60px;'>
            <center>
                %s<br>
            </center>
            </div>
        </body>
        </html>`

// Render returns the complete HTML page for message. The message is
// substituted verbatim at a single point in the skeleton, with no escaping
// and no length limit, so callers are responsible for message safety.
// Render has no side effects and cannot fail: identical input always yields
// byte-identical output, and an empty message simply leaves the
// substitution point blank.
func Render(message string) string {
	return fmt.Sprintf(skeleton, message)
}
