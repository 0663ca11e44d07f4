package resolver

// technique1 builds a ProjectFile for pathWithinProject: the project-file
// import technique, also reused by technique 4 when a cross-package import
// resolves back to the project itself.
func (r *Resolver) technique1(pathWithinProject string) (ProjectFile, error) {
	return r.buildProjectFile(pathWithinProject)
}
