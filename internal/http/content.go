package http

// Static intro copy rendered at the top of the main pages.
const (
	homeStartingContent = "Welcome to our home page, where stories and articles " +
		"from our community of writers come to life. Scroll through the latest " +
		"posts and dive into whatever catches your eye. Happy reading!"

	aboutContent = "Welcome to our blog! We are a small team of writers and " +
		"tinkerers running a simple space to create, read, update, and delete " +
		"blog posts, with accounts and sessions keeping everyone's work their own."

	contactContent = "Questions, corrections, or just want to say hello? Drop " +
		"us a line and we will get back to you as soon as we can."

	userPostsStartingContent = "These are your posts. Compose a new one, edit " +
		"what you have written, or clear out the ones you no longer want."
)
