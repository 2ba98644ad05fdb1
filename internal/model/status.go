package model

// StatusNew is the status every submission and application starts with.
// Status is otherwise free text set by admins.
const StatusNew = "new"
